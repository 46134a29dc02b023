package questionbank

import "nexaterminal/internal/model"

const CategoryPayment = "payment"

// Payment covers salary, allowances and payslips
func Payment() *model.Bank {
	return &model.Bank{
		Topic: "payment",
		Title: "Плата и надоместоци",
		CategoryNames: map[string]string{
			CategoryPayment: "Плата и надоместоци",
		},
		Sanctions: defaultSanctions(),
		Grades:    defaultGrades(),
		Questions: []model.Question{
			{
				ID:             "pay_minimum_wage",
				Category:       CategoryPayment,
				Text:           "Дали исплатената нето плата на секој вработен со полно работно време е еднаква или повисока од законски утврдената минимална плата?",
				Article:        "член 3 од Законот за минимална плата",
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Усогласете ги платите со важечкиот износ на минималната плата.",
			},
			{
				ID:            "pay_frequency",
				Category:      CategoryPayment,
				Text:          "Колку често се исплаќа платата?",
				Article:       article("108"),
				Type:          model.AnswerTypeChoice,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "monthly", Text: "Најмалку еднаш месечно, најдоцна до 15-ти во тековниот за претходниот месец", IsCorrect: true},
					{Value: "late", Text: "Со задоцнување подолго од 15 дена", IsCorrect: false},
					{Value: "irregular", Text: "Нередовно", IsCorrect: false},
				},
				Recommendation: "Исплаќајте ја платата најмалку еднаш месечно во рокот утврден со закон и колективен договор.",
			},
			{
				ID:             "pay_bank_account",
				Category:       CategoryPayment,
				Text:           "Дали платата се исплаќа преку трансакциска сметка на вработениот?",
				Article:        article("108"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Исплаќајте ги платите исклучиво преку трансакциски сметки на вработените.",
			},
			{
				ID:             "pay_payslip",
				Category:       CategoryPayment,
				Text:           "Дали на вработените им доставувате писмена пресметка на платата за секоја исплата?",
				Article:        article("112"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Доставувајте писмена пресметка (платен лист) за секоја исплата на плата.",
			},
			{
				ID:            "pay_supplements",
				Category:      CategoryPayment,
				Text:          "За кои случаи исплаќате зголемена плата?",
				Article:       article("106"),
				Type:          model.AnswerTypeMultiCheck,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "overtime", Text: "Прекувремена работа", IsCorrect: true},
					{Value: "night", Text: "Ноќна работа", IsCorrect: true},
					{Value: "holiday", Text: "Работа во денови на празници", IsCorrect: true},
					{Value: "shifts", Text: "Работа во смени", IsCorrect: true},
				},
				Recommendation: "Исплаќајте зголемена плата за прекувремена, ноќна, сменска работа и работа на празници.",
			},
			{
				ID:             "pay_equal",
				Category:       CategoryPayment,
				Text:           "Дали на вработените мажи и жени им исплаќате еднаква плата за иста работа или работа со еднаква вредност?",
				Article:        article("108"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Преиспитајте ја систематизацијата и платите за да обезбедите еднаква плата за еднаква работа.",
			},
			{
				ID:             "pay_sick_leave",
				Category:       CategoryPayment,
				Text:           "Дали исплаќате надоместок на плата за првите 30 дена боледување од сопствени средства?",
				Article:        article("112"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Исплаќајте надоместок за првите 30 дена привремена спреченост за работа на товар на работодавачот.",
			},
			{
				ID:             "pay_records",
				Category:       CategoryPayment,
				Text:           "Дали ги чувате пресметките и доказите за исплатените плати најмалку онолку долго колку што пропишува законот?",
				Article:        article("112"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         1,
				SanctionLevel:  model.SanctionNone,
				Recommendation: "Воспоставете архива на пресметките на плата и банкарските изводи.",
			},
		},
	}
}
