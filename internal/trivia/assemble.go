package trivia

// assembleViews joins each question with its category label and the
// total-in-scope count. The count differs by call site: the pagination path
// passes the size of the whole collection, search and category filters pass
// the size of the filtered set.
func assembleViews(questions []Question, labels map[int]string, totalInScope int) ([]QuestionView, error) {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		label, ok := labels[q.CategoryID]
		if !ok {
			return nil, &DanglingCategoryError{QuestionID: q.ID, CategoryID: q.CategoryID}
		}
		views = append(views, QuestionView{
			ID:            q.ID,
			Text:          q.Text,
			Answer:        q.Answer,
			Difficulty:    q.Difficulty,
			CategoryLabel: label,
			TotalInScope:  totalInScope,
		})
	}
	return views, nil
}
