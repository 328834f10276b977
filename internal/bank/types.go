package bank

// Category is one of the screened behavioral domains.
type Category string

const (
	CategoryConcentration Category = "concentracao"
	CategoryImpulsivity   Category = "impulsividade"
	CategoryHyperactivity Category = "hiperatividade"
)

// Categories returns the closed category set in canonical order. Anything
// that must break ties between categories uses this order.
func Categories() []Category {
	return []Category{CategoryConcentration, CategoryImpulsivity, CategoryHyperactivity}
}

// Valid reports whether c is in the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryConcentration, CategoryImpulsivity, CategoryHyperactivity:
		return true
	}
	return false
}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryConcentration:
		return "Concentração"
	case CategoryImpulsivity:
		return "Impulsividade"
	case CategoryHyperactivity:
		return "Hiperatividade"
	default:
		return string(c)
	}
}

// Bucket is the coarse response grouping used to pick feedback text.
type Bucket string

const (
	BucketLow    Bucket = "low"
	BucketMedium Bucket = "medium"
	BucketHigh   Bucket = "high"
)

// Buckets returns every response bucket, lowest first.
func Buckets() []Bucket {
	return []Bucket{BucketLow, BucketMedium, BucketHigh}
}

// Valid reports whether b is a known response bucket.
func (b Bucket) Valid() bool {
	switch b {
	case BucketLow, BucketMedium, BucketHigh:
		return true
	}
	return false
}

// ScalePoint maps one custom option of a question to its weight and bucket.
type ScalePoint struct {
	Option string `yaml:"option" json:"option"`
	Weight int    `yaml:"weight" json:"weight"`
	Bucket Bucket `yaml:"bucket" json:"bucket"`
}

// Question is a single screening question.
type Question struct {
	ID       int               `yaml:"id" json:"id"`
	Text     string            `yaml:"text" json:"text"`
	Options  []string          `yaml:"options" json:"options"`
	Category Category          `yaml:"category" json:"category"`
	Feedback map[Bucket]string `yaml:"feedback" json:"feedback"`
	// Scale replaces the generic frequency scale for questions whose
	// options use custom phrasing.
	Scale []ScalePoint `yaml:"scale,omitempty" json:"scale,omitempty"`
}

// HasOption reports whether option is one of the question's choices.
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

type document struct {
	Questions []Question `yaml:"questions"`
}
