package testcases

// All contains all test cases, organized by category.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"arc":       arcCases,
	"curve":     curveCases,
	"mesh":      meshCases,
	"ctm":       ctmCases,
	"precision": precisionCases,
	"large":     largeCases,
}
