package extraction

import "strings"

// notesPlaceholder marks where the meeting notes are substituted into promptTemplate
const notesPlaceholder = "{{NOTES}}"

const promptTemplate = `
You are an expert assistant specialized in analyzing meeting notes.
Your task is to extract a summary, key decisions, and action items from the provided text.
Please return the output in a clean JSON format.

The JSON object should have the following structure:
{
  "summary": "A 2-3 sentence summary of the meeting.",
  "decisions": ["A list of key decisions made."],
  "actionItems": [
    {
      "task": "The specific task to be done.",
      "owner": "The person responsible (if mentioned, otherwise omit).",
      "due": "The deadline for the task (if mentioned, otherwise omit)."
    }
  ]
}

Here are the meeting notes:
---
{{NOTES}}
---
`

// BuildPrompt embeds notes verbatim into the extraction prompt
func BuildPrompt(notes string) string {
	return strings.Replace(promptTemplate, notesPlaceholder, notes, 1)
}
