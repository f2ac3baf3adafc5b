// Package prompt turns extracted image analysis and a user question
// into the instruction text sent to the language model. Composition is
// pure string substitution keyed by category; it cannot fail.
package prompt

import (
	"fmt"

	"github.com/Ebiethub/AI-image-chat/internal/category"
)

const medicalTemplate = `As a medical assistant, analyze these image tags: %s
For this question: %s

Provide:
1. 3 possible conditions matching these symptoms
2. Recommended diagnostic tests
3. Urgency level (Emergency/Urgent/Routine)
4. Clear disclaimer

Format: Concise bullet points in plain text`

const productTemplate = `Analyze product features: %s
For query: %s

Provide:
1. Product identification
2. Price estimate range (USD)
3. 3 fictional purchase options
4. Alternative suggestions

Format: Simple text with line breaks`

const generalTemplate = `Analyze image description: %s
For question: %s

Provide:
1. Direct answer
2. 3 relevant facts
3. Related information

Format: Short paragraphs in plain text`

// Compose builds the full prompt for a category. Both slots are
// substituted verbatim; the analysis text may be empty or carry an
// inline extraction error, which is deliberate.
func Compose(cat category.Category, analysis, query string) string {
	switch cat {
	case category.Medical:
		return fmt.Sprintf(medicalTemplate, analysis, query)
	case category.Product:
		return fmt.Sprintf(productTemplate, analysis, query)
	default:
		return fmt.Sprintf(generalTemplate, analysis, query)
	}
}
