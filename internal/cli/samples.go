package cli

import "quizmaster-service/internal/domain"

// sampleQuizzes is the fixed catalog every deployment ships with; authored
// quizzes are layered on top by the quiz store.
func sampleQuizzes() []domain.Quiz {
	return []domain.Quiz{
		{
			ID:          "sample-1",
			Title:       "General Knowledge",
			Description: "Test your knowledge on various topics",
			Category:    "General",
			Difficulty:  "Easy",
			Questions: []domain.Question{
				{
					ID:            1,
					Text:          "What is the capital of France?",
					Options:       []string{"London", "Berlin", "Paris", "Madrid"},
					CorrectAnswer: 2,
				},
				{
					ID:            2,
					Text:          "Which planet is known as the Red Planet?",
					Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
					CorrectAnswer: 1,
				},
				{
					ID:            3,
					Text:          "What is the largest mammal in the world?",
					Options:       []string{"Elephant", "Blue Whale", "Giraffe", "Polar Bear"},
					CorrectAnswer: 1,
				},
				{
					ID:            4,
					Text:          "Who painted the Mona Lisa?",
					Options:       []string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"},
					CorrectAnswer: 2,
				},
				{
					ID:            5,
					Text:          "What is the chemical symbol for gold?",
					Options:       []string{"Go", "Gd", "Au", "Ag"},
					CorrectAnswer: 2,
				},
			},
		},
		{
			ID:          "sample-2",
			Title:       "JavaScript Basics",
			Description: "Test your JavaScript knowledge",
			Category:    "Programming",
			Difficulty:  "Medium",
			Questions: []domain.Question{
				{
					ID:            1,
					Text:          "Which keyword is used to declare a variable in JavaScript?",
					Options:       []string{"var", "let", "const", "All of the above"},
					CorrectAnswer: 3,
				},
				{
					ID:            2,
					Text:          "What does DOM stand for?",
					Options:       []string{"Document Object Model", "Data Object Model", "Digital Object Management", "Document Orientation Mode"},
					CorrectAnswer: 0,
				},
				{
					ID:            3,
					Text:          "Which method is used to add an element to the end of an array?",
					Options:       []string{"push()", "pop()", "shift()", "unshift()"},
					CorrectAnswer: 0,
				},
				{
					ID:            4,
					Text:          "What will typeof null return?",
					Options:       []string{"null", "undefined", "object", "number"},
					CorrectAnswer: 2,
				},
				{
					ID:            5,
					Text:          "Which operator is used for strict equality comparison?",
					Options:       []string{"==", "===", "=", "!="},
					CorrectAnswer: 1,
				},
			},
		},
		{
			ID:          "sample-3",
			Title:       "World History",
			Description: "Test your knowledge of world history",
			Category:    "History",
			Difficulty:  "Medium",
			Questions: []domain.Question{
				{
					ID:            1,
					Text:          "In which year did World War II end?",
					Options:       []string{"1944", "1945", "1946", "1947"},
					CorrectAnswer: 1,
				},
				{
					ID:            2,
					Text:          "Who was the first president of the United States?",
					Options:       []string{"Thomas Jefferson", "George Washington", "Abraham Lincoln", "John Adams"},
					CorrectAnswer: 1,
				},
				{
					ID:            3,
					Text:          "Which ancient civilization built the Machu Picchu?",
					Options:       []string{"Aztec", "Maya", "Inca", "Egyptian"},
					CorrectAnswer: 2,
				},
				{
					ID:            4,
					Text:          "When was the Berlin Wall demolished?",
					Options:       []string{"1987", "1988", "1989", "1990"},
					CorrectAnswer: 2,
				},
				{
					ID:            5,
					Text:          "Who discovered America?",
					Options:       []string{"Christopher Columbus", "Vasco da Gama", "Ferdinand Magellan", "James Cook"},
					CorrectAnswer: 0,
				},
			},
		},
	}
}
