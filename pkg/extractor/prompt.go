package extractor

import "fmt"

// buildPrompt fixes the exact output schema and extraction rules for the
// model. year completes dates that do not mention one.
func buildPrompt(text string, year int) string {
	return fmt.Sprintf(`
Analyze this academic syllabus and extract all assignments, readings, and important dates.
Return a JSON object with the following structure:

{
  "courseInfo": {
    "title": "Course title",
    "professor": "Professor name",
    "semester": "Semester and year",
    "classTime": "Class time if mentioned",
    "room": "Room number if mentioned"
  },
  "assignments": [
    {
      "id": "unique_id",
      "date": "YYYY-MM-DD",
      "title": "Brief title of the assignment",
      "type": "reading|assignment|exam|presentation|conference|other",
      "description": "Detailed description",
      "isRequired": true/false,
      "timeStart": "HH:MM" (if specific time mentioned),
      "timeEnd": "HH:MM" (if specific time mentioned)
    }
  ]
}

Important guidelines:
1. Extract ALL dates that have associated tasks, readings, or assignments
2. For reading assignments, use type "reading"
3. For written work due dates, use type "assignment"
4. For exams and oral arguments, use type "exam" or "presentation"
5. For conferences/meetings, use type "conference"
6. Make titles concise but descriptive
7. Include page numbers and chapter references in descriptions
8. If a date has multiple tasks, create separate entries for each
9. Use the year %d for dates that don't specify a year
10. Convert 12-hour time mentions to 24-hour HH:MM
11. Only include dates that have specific academic activities

Syllabus text:
%s

Return ONLY the JSON object, no additional text.`, year, text)
}
