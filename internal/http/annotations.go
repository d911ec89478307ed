package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/paperread/internal/entities"
)

// AnnotationInput is one highlighted word in a save request.
type AnnotationInput struct {
	Word  string `json:"word"`
	Color string `json:"color"`
}

// SaveAnnotationsRequest replaces the reader's annotations for an article.
type SaveAnnotationsRequest struct {
	Annotations []AnnotationInput `json:"annotations"`
}

type AnnotationsController struct {
	store AnnotationStore
}

func NewAnnotationsController(store AnnotationStore) *AnnotationsController {
	return &AnnotationsController{store: store}
}

// GetAnnotations returns the reader's annotations for an article.
// GET /api/articles/:id/annotations
func (ac *AnnotationsController) GetAnnotations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	annotations, err := ac.store.GetAnnotations(id, GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "get annotations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"annotations": toAnnotationInputs(annotations)})
}

// SaveAnnotations replaces the reader's annotations for an article.
// POST /api/articles/:id/save_annotations
func (ac *AnnotationsController) SaveAnnotations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SaveAnnotationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	input := make([]entities.Annotation, len(req.Annotations))
	for i, a := range req.Annotations {
		input[i] = entities.Annotation{Word: a.Word, Color: a.Color}
	}

	saved, err := ac.store.ReplaceAnnotations(id, GetUserID(c), input)
	if err != nil {
		respondInternalError(c, err, "save annotations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "annotations saved",
		"annotations": toAnnotationInputs(saved),
	})
}

func toAnnotationInputs(annotations []entities.Annotation) []AnnotationInput {
	out := make([]AnnotationInput, len(annotations))
	for i, a := range annotations {
		out[i] = AnnotationInput{Word: a.Word, Color: a.Color}
	}
	return out
}
