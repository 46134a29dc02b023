package questionbank

import "nexaterminal/internal/model"

const (
	CategoryWorkingTime = "working_time"
	CategoryRestBreaks  = "rest_breaks"
)

// WorkingTime covers working hours, overtime, breaks, rest periods and
// annual leave
func WorkingTime() *model.Bank {
	return &model.Bank{
		Topic: "working_time",
		Title: "Работно време, одмори и отсуства",
		CategoryNames: map[string]string{
			CategoryWorkingTime: "Работно време",
			CategoryRestBreaks:  "Одмори и паузи",
		},
		Sanctions: defaultSanctions(),
		Grades:    defaultGrades(),
		Questions: []model.Question{
			{
				ID:             "wt_full_time",
				Category:       CategoryWorkingTime,
				Text:           "Дали полното работно време на вработените е најмногу 40 часа неделно?",
				Article:        article("116"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Усогласете ги распоредите за работа така што полното работно време не надминува 40 часа неделно.",
			},
			{
				ID:             "wt_schedule",
				Category:       CategoryWorkingTime,
				Text:           "Дали распоредот на работното време е утврден и писмено соопштен на вработените пред почетокот на календарската година?",
				Article:        article("124"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Донесете годишен распоред на работното време и доставете го писмено до сите вработени.",
			},
			{
				ID:            "wt_overtime_limit",
				Category:      CategoryWorkingTime,
				Text:          "Колку часа прекувремена работа неделно најмногу работат вашите вработени?",
				Article:       article("117"),
				Type:          model.AnswerTypeChoice,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "none", Text: "Не работат прекувремено", IsCorrect: true},
					{Value: "up_to_8", Text: "До 8 часа неделно", IsCorrect: true},
					{Value: "over_8", Text: "Повеќе од 8 часа неделно", IsCorrect: false},
				},
				Recommendation: "Ограничете ја прекувремената работа на најмногу 8 часа неделно и 190 часа годишно.",
			},
			{
				ID:             "wt_overtime_consent",
				Category:       CategoryWorkingTime,
				Text:           "Дали прекувремената работа се воведува со писмена одлука и со согласност на вработениот?",
				Article:        article("117"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Воведувајте прекувремена работа само со писмена одлука и евидентирана согласност на вработениот.",
			},
			{
				ID:             "wt_records",
				Category:       CategoryWorkingTime,
				Text:           "Дали водите евиденција за полното, прекувременото и ноќното работно време на секој вработен?",
				Article:        article("116-а"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Воспоставете дневна евиденција на работното време за секој вработен.",
			},
			{
				ID:            "wt_night_work",
				Category:      CategoryWorkingTime,
				Text:          "Кои мерки ги применувате за вработените кои работат ноќе?",
				Article:       article("128"),
				Type:          model.AnswerTypeMultiCheck,
				Weight:        2,
				SanctionLevel: model.SanctionMedium,
				Options: []model.Option{
					{Value: "health_check", Text: "Здравствен преглед пред распоредување на ноќна работа", IsCorrect: true},
					{Value: "rotation", Text: "Ротација на смените", IsCorrect: true},
					{Value: "minors_night", Text: "Распоредување на малолетни лица на ноќна работа", IsCorrect: false},
				},
				Recommendation: "Обезбедете здравствени прегледи и ротација на смените за ноќната работа и не распоредувајте малолетни лица ноќе.",
			},
			{
				ID:             "rb_daily_break",
				Category:       CategoryRestBreaks,
				Text:           "Дали вработените со полно работно време имаат право на дневен одмор (пауза) од најмалку 30 минути?",
				Article:        article("132"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Обезбедете пауза од најмалку 30 минути во текот на работното време која се смета во работното време.",
			},
			{
				ID:             "rb_daily_rest",
				Category:       CategoryRestBreaks,
				Text:           "Дали меѓу два последователни работни дена вработените имаат одмор од најмалку 12 часа без прекин?",
				Article:        article("133"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Распоредете ги смените така што меѓу два работни дена има најмалку 12 часа непрекинат одмор.",
			},
			{
				ID:             "rb_weekly_rest",
				Category:       CategoryRestBreaks,
				Text:           "Дали вработените имаат неделен одмор од најмалку 24 часа без прекин?",
				Article:        article("134"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Обезбедете неделен одмор од најмалку 24 часа непрекинато, по правило во недела.",
			},
			{
				ID:            "rb_annual_leave",
				Category:      CategoryRestBreaks,
				Text:          "Колку работни дена годишен одмор им обезбедувате на вработените?",
				Article:       article("137"),
				Type:          model.AnswerTypeChoice,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "less_than_20", Text: "Помалку од 20 работни дена", IsCorrect: false},
					{Value: "20_to_26", Text: "Од 20 до 26 работни дена", IsCorrect: true},
					{Value: "more_than_26", Text: "Повеќе од 26 работни дена", IsCorrect: true},
				},
				Recommendation: "Утврдете годишен одмор од најмалку 20 работни дена за секој вработен.",
			},
			{
				ID:             "rb_leave_cash",
				Category:       CategoryRestBreaks,
				Text:           "Дали на вработените им исплаќате надоместок наместо да им дозволите да го искористат годишниот одмор?",
				Article:        article("137"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerNo,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Годишниот одмор не смее да се заменува со парично надоместување; овозможете негово користење.",
			},
			{
				ID:             "rb_leave_plan",
				Category:       CategoryRestBreaks,
				Text:           "Дали имате донесено план за користење на годишните одмори?",
				Article:        article("141"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         1,
				SanctionLevel:  model.SanctionNone,
				Recommendation: "Донесете план за користење на годишните одмори по консултација со вработените.",
			},
		},
	}
}
