package trivia

// Paginate slices an ordered question list into the 1-indexed page window
// [(page-1)*size, page*size). The input order is preserved; callers pass
// ascending-id slices so repeated calls see the same windows.
func Paginate(questions []Question, page, size int) ([]Question, error) {
	if page < 1 || size < 1 {
		return nil, ErrPageOutOfRange
	}
	start := (page - 1) * size
	if start >= len(questions) {
		return nil, ErrPageOutOfRange
	}
	end := start + size
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end], nil
}
