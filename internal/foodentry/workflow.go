package foodentry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/gentlegains/internal/api"
	"github.com/julianstephens/gentlegains/internal/constants"
	apperrors "github.com/julianstephens/gentlegains/internal/errors"
	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
)

// State is the step of the food entry flow
type State int

const (
	StateIdle State = iota
	StateAnalyzing
	StateReview
	StateReviewWithDBError
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateReview:
		return "review"
	case StateReviewWithDBError:
		return "review_with_dberror"
	case StateSuccess:
		return "success"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when an action is not allowed in the current state
var ErrInvalidTransition = errors.New("invalid transition")

// Analyzer is the backend call the workflow drives
type Analyzer interface {
	Analyze(ctx context.Context, req api.AnalyzeRequest) (models.AnalysisResult, error)
}

// Workflow holds the form and the current step. At most one analysis is in flight.
type Workflow struct {
	state    State
	image    string
	foodName string
	mealType models.MealType
	result   *models.AnalysisResult
	notice   string
	lastErr  error
}

func New() *Workflow {
	return &Workflow{mealType: models.DefaultMealType}
}

func (w *Workflow) State() State              { return w.state }
func (w *Workflow) Image() string             { return w.image }
func (w *Workflow) FoodName() string          { return w.foodName }
func (w *Workflow) MealType() models.MealType { return w.mealType }

// Result is the last analysis, present in Review and ReviewWithDBError
func (w *Workflow) Result() *models.AnalysisResult { return w.result }

// Notice is the user-facing message for the last failure or warning
func (w *Workflow) Notice() string { return w.notice }

// Err is the underlying error of the last failed analysis
func (w *Workflow) Err() error { return w.lastErr }

// SelectImage stores a local preview reference. Nothing is uploaded yet.
func (w *Workflow) SelectImage(path string) error {
	if w.state != StateIdle {
		return w.invalid("select image")
	}
	w.image = strings.TrimSpace(path)
	return nil
}

func (w *Workflow) SetFoodName(name string) error {
	if w.state != StateIdle {
		return w.invalid("edit food name")
	}
	w.foodName = name
	return nil
}

func (w *Workflow) SetMealType(m models.MealType) error {
	if w.state != StateIdle {
		return w.invalid("edit meal type")
	}
	if !m.Valid() {
		return apperrors.NewValidation("meal_type", fmt.Sprintf("unknown meal type %q", m))
	}
	w.mealType = m
	return nil
}

// Submit validates the form and moves Idle to Analyzing.
// The image is checked before the food name.
func (w *Workflow) Submit() error {
	if w.state != StateIdle {
		return w.invalid("submit")
	}
	if w.image == "" {
		w.notice = constants.MissingImageNotice
		return apperrors.NewValidation("image", constants.MissingImageNotice)
	}
	if strings.TrimSpace(w.foodName) == "" {
		w.notice = constants.MissingNameNotice
		return apperrors.NewValidation("food_name", constants.MissingNameNotice)
	}
	w.notice = ""
	w.lastErr = nil
	w.transition(StateAnalyzing)
	return nil
}

// BuildRequest encodes the selected image into the analyze request body
func (w *Workflow) BuildRequest() (api.AnalyzeRequest, error) {
	if w.state != StateAnalyzing {
		return api.AnalyzeRequest{}, w.invalid("build request")
	}
	encoded, err := EncodeImage(w.image)
	if err != nil {
		return api.AnalyzeRequest{}, err
	}
	return api.AnalyzeRequest{
		ImageBase64: encoded,
		FoodName:    strings.TrimSpace(w.foodName),
		MealType:    w.mealType,
	}, nil
}

// Complete applies the analysis outcome. A failure returns the flow to Idle
// with the form kept; an explicit is_saved=false lands in ReviewWithDBError.
func (w *Workflow) Complete(result models.AnalysisResult, err error) error {
	if w.state != StateAnalyzing {
		return w.invalid("complete analysis")
	}
	if err != nil {
		logger.Warn("Food analysis failed", "food", w.foodName, "error", err)
		w.lastErr = err
		w.notice = constants.AnalyzeFailure
		w.result = nil
		w.transition(StateIdle)
		return nil
	}

	w.result = &result
	if result.PersistenceFailed() {
		w.notice = constants.AnalyzeDBWarning
		w.transition(StateReviewWithDBError)
		return nil
	}
	w.notice = ""
	w.transition(StateReview)
	return nil
}

// Confirm accepts a saved analysis
func (w *Workflow) Confirm() error {
	if w.state != StateReview {
		return w.invalid("confirm")
	}
	w.transition(StateSuccess)
	return nil
}

// Reset discards the image, result and food name. The meal type is kept.
// From Review it retakes the photo, from ReviewWithDBError it retries,
// from Success it starts a new entry.
func (w *Workflow) Reset() error {
	switch w.state {
	case StateReview, StateReviewWithDBError, StateSuccess:
	default:
		return w.invalid("reset")
	}
	w.image = ""
	w.foodName = ""
	w.result = nil
	w.notice = ""
	w.lastErr = nil
	w.transition(StateIdle)
	return nil
}

// Run drives Submit, the backend call and Complete in one go.
// Validation errors are returned; analysis failures are recorded on the workflow.
func (w *Workflow) Run(ctx context.Context, a Analyzer) error {
	if err := w.Submit(); err != nil {
		return err
	}
	req, err := w.BuildRequest()
	if err != nil {
		return w.Complete(models.AnalysisResult{}, err)
	}
	result, err := a.Analyze(ctx, req)
	return w.Complete(result, err)
}

func (w *Workflow) transition(to State) {
	logger.Debug("Food entry transition", "from", w.state, "to", to)
	w.state = to
}

func (w *Workflow) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s in state %s", ErrInvalidTransition, action, w.state)
}
