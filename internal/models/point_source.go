package models

// PointSource identifies the engagement action that triggered a point change.
type PointSource string

const (
	SourcePostCreated     PointSource = "POST_CREATED"
	SourceCommentCreated  PointSource = "COMMENT_CREATED"
	SourcePostLiked       PointSource = "POST_LIKED"
	SourceCommentLiked    PointSource = "COMMENT_LIKED"
	SourceLessonCompleted PointSource = "LESSON_COMPLETED"
)

// sourcePoints is the closed catalog of point values. Adding an engagement
// action means adding a constant above and an entry here.
var sourcePoints = map[PointSource]int{
	SourcePostCreated:     2,
	SourceCommentCreated:  1,
	SourcePostLiked:       1,
	SourceCommentLiked:    1,
	SourceLessonCompleted: 5,
}

// Points returns the fixed point value of the source, or 0 for an unknown one.
func (s PointSource) Points() int {
	return sourcePoints[s]
}

// Valid reports whether the source is part of the catalog.
func (s PointSource) Valid() bool {
	_, ok := sourcePoints[s]
	return ok
}

func (s PointSource) String() string {
	return string(s)
}

// AllPointSources lists the catalog in a stable order.
func AllPointSources() []PointSource {
	return []PointSource{
		SourcePostCreated,
		SourceCommentCreated,
		SourcePostLiked,
		SourceCommentLiked,
		SourceLessonCompleted,
	}
}
