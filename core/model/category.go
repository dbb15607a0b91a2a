package model

// Category classifies a schedulable unit. Values match the native engine's
// task category codes and must not be reordered.
type Category int32

const (
	CategoryFixedClass Category = iota
	CategoryConceptStudy
	CategoryPracticeStudy
	CategoryMicroGap
	CategorySleep
	CategoryBreak
	CategoryMeal
	CategoryRevision
	CategoryAssignment
	CategoryLabWork
)

func (c Category) String() string {
	switch c {
	case CategoryFixedClass:
		return "fixed_class"
	case CategoryConceptStudy:
		return "concept_study"
	case CategoryPracticeStudy:
		return "practice_study"
	case CategoryMicroGap:
		return "micro_gap"
	case CategorySleep:
		return "sleep"
	case CategoryBreak:
		return "break"
	case CategoryMeal:
		return "meal"
	case CategoryRevision:
		return "revision"
	case CategoryAssignment:
		return "assignment"
	case CategoryLabWork:
		return "lab_work"
	}
	return "unknown"
}

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	return c >= CategoryFixedClass && c <= CategoryLabWork
}

// Window returns the preferred day-local placement window for the category.
// Only the two study categories carry an energy-peak preference; every other
// category reports ok=false and is placed first-fit.
func (c Category) Window(cfg Config) (start, end int, ok bool) {
	switch c {
	case CategoryConceptStudy:
		return cfg.ConceptPeakStart, cfg.ConceptPeakEnd, true
	case CategoryPracticeStudy:
		return cfg.PracticePeakStart, cfg.PracticePeakEnd, true
	case CategoryFixedClass, CategoryMicroGap, CategorySleep,
		CategoryBreak, CategoryMeal, CategoryRevision,
		CategoryAssignment, CategoryLabWork:
		return 0, 0, false
	}
	return 0, 0, false
}
