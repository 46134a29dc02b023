package questionbank

import "nexaterminal/internal/model"

// Penalty ranges of the Law on Labour Relations, graded by company size.
// The amounts are shown to the user verbatim.
func defaultSanctions() model.SanctionTable {
	return model.SanctionTable{
		model.CompanyMicro: {
			model.SanctionHigh:   {Employer: "500 до 1.000 евра", Responsible: "250 евра"},
			model.SanctionMedium: {Employer: "200 до 400 евра", Responsible: "100 евра"},
		},
		model.CompanySmall: {
			model.SanctionHigh:   {Employer: "1.000 до 2.000 евра", Responsible: "400 евра"},
			model.SanctionMedium: {Employer: "400 до 600 евра", Responsible: "200 евра"},
		},
		model.CompanyMedium: {
			model.SanctionHigh:   {Employer: "3.000 до 5.000 евра", Responsible: "800 евра"},
			model.SanctionMedium: {Employer: "1.000 до 2.000 евра", Responsible: "400 евра"},
		},
		model.CompanyLarge: {
			model.SanctionHigh:   {Employer: "5.000 до 7.000 евра", Responsible: "1.000 евра"},
			model.SanctionMedium: {Employer: "2.000 до 3.000 евра", Responsible: "600 евра"},
		},
	}
}

func defaultGrades() model.GradeTable {
	return model.GradeTable{
		{
			Min:         90,
			Label:       "Одлична усогласеност",
			Class:       "excellent",
			Description: "{company} во голема мера ги почитува обврските од трудовото законодавство. Продолжете со редовни проверки за да ја одржите усогласеноста.",
		},
		{
			Min:         75,
			Label:       "Добра усогласеност",
			Class:       "good",
			Description: "{company} ги исполнува повеќето законски обврски, но постојат поединечни неусогласености што треба да се отстранат.",
		},
		{
			Min:         50,
			Label:       "Делумна усогласеност",
			Class:       "partial",
			Description: "{company} има значителни неусогласености кои можат да доведат до прекршочни санкции при инспекциски надзор.",
		},
		{
			Min:         25,
			Label:       "Ниска усогласеност",
			Class:       "low",
			Description: "{company} не ги исполнува голем дел од законските обврски. Препорачуваме итно усогласување со стручна правна помош.",
		},
		{
			Min:         0,
			Label:       "Критична состојба",
			Class:       "critical",
			Description: "Работењето на {company} е сериозно неусогласено со трудовото законодавство и е изложено на високи казни и работни спорови.",
		},
	}
}

const lawName = "Законот за работните односи"

func article(n string) string {
	return "член " + n + " од " + lawName
}
