package loads

import (
	"github.com/freightdock/drayman/internal/documents"
)

// RequiredTypes are the document types a load needs before it is
// considered complete. Order is fixed and reflected in MissingTypes.
var RequiredTypes = []documents.DocumentType{
	documents.TypePOD,
	documents.TypeBOL,
	documents.TypeInvoice,
}

// Completion reports a load's document completion state.
type Completion struct {
	Count        int                      `json:"count"`
	Total        int                      `json:"total"`
	IsComplete   bool                     `json:"is_complete"`
	MissingTypes []documents.DocumentType `json:"missing_types"`
}

// ComputeCompletion evaluates the completion policy over a load's documents.
// Only classified documents count toward completion: pending and errored
// documents contribute nothing, and duplicates of a type count once.
// Documents of unrequired types never affect the result.
func ComputeCompletion(docs []documents.Document) Completion {
	present := make(map[documents.DocumentType]bool)

	for _, d := range docs {
		if d.Status != documents.StatusClassified || d.Type == nil {
			continue
		}
		present[*d.Type] = true
	}

	c := Completion{
		Total:        len(RequiredTypes),
		MissingTypes: make([]documents.DocumentType, 0),
	}

	for _, t := range RequiredTypes {
		if present[t] {
			c.Count++
		} else {
			c.MissingTypes = append(c.MissingTypes, t)
		}
	}

	c.IsComplete = c.Count == c.Total
	return c
}
