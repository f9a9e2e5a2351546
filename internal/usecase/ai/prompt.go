package ai

import "fmt"

const extractionPromptTemplate = `
You are a meeting notes analyzer. Extract the following from these meeting notes:

1. ACTION ITEMS: Tasks that need to be done, who is responsible, and any deadlines
   Format: [{"task": "...", "assigned_to": "...", "deadline": "..."}]

2. DECISIONS: Key decisions that were made
   Format: ["Decision 1", "Decision 2", ...]

3. KEY POINTS: Important discussion topics or takeaways
   Format: ["Point 1", "Point 2", ...]

4. SUMMARY: A brief 2-3 sentence summary of the meeting

Meeting Notes:
%s

Return ONLY valid JSON in this exact format:
{
  "action_items": [{"task": "...", "assigned_to": "...", "deadline": "..."}],
  "decisions": ["..."],
  "key_points": ["..."],
  "summary": "..."
}

If any section has no items, return an empty array [].
`

// BuildExtractionPrompt renders the raw notes into the extraction instruction.
// The notes are embedded verbatim; the output depends on nothing else.
func BuildExtractionPrompt(rawNotes string) string {
	return fmt.Sprintf(extractionPromptTemplate, rawNotes)
}
