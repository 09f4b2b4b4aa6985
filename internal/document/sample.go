package document

// lessonRows are the key/value rows of the lesson plan summary table.
var lessonRows = [][2]string{
	{"Course", "Course name (code)"},
	{"Instructor", "Instructor name"},
	{"Duration", "Lesson duration"},
	{"Learning Objectives", "What students will learn"},
	{"Materials Needed", "List required materials"},
}

// SampleLesson returns a lesson plan to start from.
func SampleLesson() *Document {
	table := &Node{Kind: KindTable}
	for _, r := range lessonRows {
		table.Children = append(table.Children, &Node{
			Kind: KindTableRow,
			Children: []*Node{
				{Kind: KindTableCell, Children: []*Node{NewParagraph(r[0])}},
				{Kind: KindTableCell, Children: []*Node{NewParagraph(r[1])}},
			},
		})
	}

	return New(
		NewHeading(1, "Lesson Title"),
		table,
		NewHeading(2, "🎯 Introduction"),
		NewParagraph("Hook and lesson overview"),
		NewHeading(2, "📚 Main Content"),
		NewList(KindBulletList, "Core teaching content", "Activities"),
		NewHeading(2, "✅ Assessment"),
		NewBlockquote("How to check for understanding"),
		NewHorizontalRule(),
		NewHeading(2, "🏠 Homework/Extension"),
		NewParagraph("Follow-up activities"),
		NewParagraph(""),
	)
}
