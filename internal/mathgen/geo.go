package mathgen

import "github.com/abhisek/mathquest/internal/rng"

var shapeNames = map[VisualKind]string{
	VisualSquare:    "Square",
	VisualCircle:    "Circle",
	VisualTriangle:  "Triangle",
	VisualRectangle: "Rectangle",
}

func geoQuestion(difficulty Difficulty, isBoss bool) Question {
	// Hard and boss always ask the square-sides fact question.
	if difficulty == Hard || isBoss {
		return Question{
			ID:      newID(),
			Kind:    KindMultipleChoice,
			Text:    "The Architect asks! How many sides does a Square have?",
			Answer:  "4",
			Options: []string{"3", "4", "5", "6"},
			Visual:  &Visual{Kind: VisualSquare},
		}
	}

	shape := rng.Pick([]VisualKind{VisualSquare, VisualCircle, VisualTriangle, VisualRectangle})
	return Question{
		ID:      newID(),
		Kind:    KindMultipleChoice,
		Text:    "What is this shape called?",
		Answer:  shapeNames[shape],
		Options: []string{"Square", "Circle", "Triangle", "Rectangle"},
		Visual:  &Visual{Kind: shape},
	}
}
