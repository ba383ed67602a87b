package locales

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/goliatone/go-datagen/pkg/provider"
)

// newEnglish builds the "en" capability graph on top of gofakeit. Module and
// function names follow the conventional faker taxonomy so templates read as
// {{person.firstName}}, {{internet.email}}, and so on.
func newEnglish() provider.Graph {
	f := gofakeit.New(0)

	return provider.Graph{
		"person": provider.Module{
			"firstName":  func() any { return f.FirstName() },
			"lastName":   func() any { return f.LastName() },
			"middleName": func() any { return f.MiddleName() },
			"fullName":   func() any { return f.Name() },
			"gender":     func() any { return f.Gender() },
			"jobTitle":   func() any { return f.JobTitle() },
			"jobLevel":   func() any { return f.JobLevel() },
			"hobby":      func() any { return f.Hobby() },
			"ssn":        func() any { return f.SSN() },
		},
		"internet": provider.Module{
			"email":      func() any { return f.Email() },
			"userName":   func() any { return f.Username() },
			"url":        func() any { return f.URL() },
			"domainName": func() any { return f.DomainName() },
			"ipv4":       func() any { return f.IPv4Address() },
			"ipv6":       func() any { return f.IPv6Address() },
			"mac":        func() any { return f.MacAddress() },
			"userAgent":  func() any { return f.UserAgent() },
		},
		"address": provider.Module{
			"city":         func() any { return f.City() },
			"country":      func() any { return f.Country() },
			"countryCode":  func() any { return f.CountryAbr() },
			"state":        func() any { return f.State() },
			"stateAbbr":    func() any { return f.StateAbr() },
			"streetName":   func() any { return f.StreetName() },
			"streetNumber": func() any { return f.StreetNumber() },
			"street":       func() any { return f.Street() },
			"zipCode":      func() any { return f.Zip() },
			"latitude":     func() any { return f.Latitude() },
			"longitude":    func() any { return f.Longitude() },
		},
		"phone": provider.Module{
			"number":    func() any { return f.Phone() },
			"formatted": func() any { return f.PhoneFormatted() },
		},
		"company": provider.Module{
			"name":        func() any { return f.Company() },
			"buzzword":    func() any { return f.BuzzWord() },
			"catchPhrase": func() any { return f.BS() },
		},
		"lorem": provider.Module{
			"word":      func() any { return f.LoremIpsumWord() },
			"sentence":  func() any { return f.LoremIpsumSentence(8) },
			"paragraph": func() any { return f.LoremIpsumParagraph(2, 4, 8, " ") },
		},
		"finance": provider.Module{
			"creditCardNumber": func() any { return f.CreditCardNumber(nil) },
			"creditCardType":   func() any { return f.CreditCardType() },
			"creditCardExp":    func() any { return f.CreditCardExp() },
			"currencyCode":     func() any { return f.CurrencyShort() },
			"currencyName":     func() any { return f.CurrencyLong() },
			"price":            func() any { return f.Price(0.01, 999.99) },
		},
		"color": provider.Module{
			"name": func() any { return f.Color() },
			"hex":  func() any { return f.HexColor() },
			"safe": func() any { return f.SafeColor() },
		},
		"date": provider.Module{
			"recent":  func() any { return f.Date().Format(time.RFC3339) },
			"year":    func() any { return f.Year() },
			"month":   func() any { return f.MonthString() },
			"weekday": func() any { return f.WeekDay() },
		},
		"uuid": provider.Module{
			"v4": func() any { return f.UUID() },
		},
	}
}
