package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campuswell/campuswell-backend/internal/http/response"
)

type SuggestionsHandler struct{}

func NewSuggestionsHandler() *SuggestionsHandler { return &SuggestionsHandler{} }

// starterPrompts seed the conversation UI, grouped roughly by student
// population.
var starterPrompts = []string{
	// General
	"I'm feeling stressed about my upcoming exams",
	"I'm struggling with time management",
	"I feel lonely and isolated at university",
	"I'm having trouble concentrating on my studies",
	"I'm worried about my future career",
	"I'm dealing with anxiety in social situations",
	"I feel overwhelmed by my coursework",
	"I'm having conflicts with my roommate",

	// Engineering/CS
	"I'm struggling with coding and debugging",
	"I want to participate in hackathons but don't know where to start",
	"I'm preparing for GATE exam and feeling overwhelmed",
	"How do I find tech internships?",
	"I'm confused about which tech career path to choose",
	"I'm experiencing burnout from constant coding",

	// Medical
	"Medical school is extremely overwhelming",
	"I'm preparing for NEET and feeling the pressure",
	"Clinical rotations are emotionally draining",
	"I'm confused about which medical specialization to pursue",

	// High school
	"I'm stressed about board exams (10th/12th)",
	"I don't know which stream to choose after 10th",
	"I'm preparing for JEE/NEET and feeling anxious",
	"I'm confused about my future career options",

	// Personal
	"I feel like I'm not good enough (imposter syndrome)",
	"I'm dealing with family pressure about my career",
	"A friend is doing better than me and I feel discouraged",
	"I failed an exam and feel like a failure",
	"I'm having financial stress as a student",
}

// GET /api/suggestions
func (h *SuggestionsHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"suggestions": starterPrompts})
}
