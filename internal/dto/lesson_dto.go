package dto

type LessonSummaryDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type CategoryLessonsDTO struct {
	Category string             `json:"category"`
	Title    string             `json:"title"`
	Lessons  []LessonSummaryDTO `json:"lessons"`
}

type LessonDTO struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Category  string            `json:"category"`
	Questions []PlayQuestionDTO `json:"questions"`
}
