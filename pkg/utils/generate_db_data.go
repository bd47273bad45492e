package utils

import "fmt"

// Categories used when seeding jobs
var Categories = []string{
	"Software Development",
	"Game Development",
	"Financial Technology",
	"E-commerce",
	"Data Science",
}

// Locations are the cities jobs are seeded in
var Locations = []string{
	"London",
	"New York",
	"Paris",
	"Berlin",
	"Madrid",
	"Amsterdam",
	"Barcelona",
	"Vienna",
	"Dublin",
	"Singapore",
	"Tokyo",
	"Warsaw",
}

var qualifiers = []string{"Junior", "Senior", "Lead"}

var languages = []string{"Java", "Python", "JavaScript", "Go", "C#", "C++", "Ruby", "Rust"}

// GenerateDeveloperJobs combines qualifiers and languages into developer job titles
func GenerateDeveloperJobs() []string {
	return combine("Developer")
}

// GenerateEngineerJobs combines qualifiers and languages into engineer job titles
func GenerateEngineerJobs() []string {
	return combine("Engineer")
}

func combine(role string) []string {
	combined := make([]string, 0, len(qualifiers)*len(languages))
	for _, qualifier := range qualifiers {
		for _, language := range languages {
			combined = append(combined, fmt.Sprintf("%s %s %s", qualifier, language, role))
		}
	}
	return combined
}
