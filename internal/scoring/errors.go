package scoring

import (
	"fmt"

	"github.com/dshills/tdahscreen/internal/bank"
)

// UnresolvedResponseError means a response does not belong to the question's
// declared options, so it has no weight.
type UnresolvedResponseError struct {
	QuestionID int
	Option     string
}

func (e *UnresolvedResponseError) Error() string {
	return fmt.Sprintf("question %d: response %q has no weight", e.QuestionID, e.Option)
}

// MissingFeedbackError means a question has no feedback text for a bucket.
type MissingFeedbackError struct {
	QuestionID int
	Bucket     bank.Bucket
}

func (e *MissingFeedbackError) Error() string {
	return fmt.Sprintf("question %d: no feedback for bucket %q", e.QuestionID, e.Bucket)
}

// MissingDescriptionError means the description table has no entry for a
// category and severity pair.
type MissingDescriptionError struct {
	Category bank.Category
	Severity Severity
}

func (e *MissingDescriptionError) Error() string {
	return fmt.Sprintf("no description for category %q at severity %q", e.Category, e.Severity)
}
