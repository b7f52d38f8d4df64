package linear

import (
	"fmt"

	"github.com/arloliu/lsts/point"
)

// Model is a least-squares fit of a point set to y = mx + c.
//
// Fields:
//   - Gradient: The coefficient m
//   - GradientAngleRad: The angle between the fitted line and the x-axis, atan(m)
//   - YIntercept: The coefficient c
//   - R2: Coefficient of determination of the fit
//   - Prediction: Input x values paired with predicted y values
//   - AbsoluteErrorMean: Mean of |y - predicted y|
//   - ErrorStd: Sample standard deviation of y - predicted y
type Model struct {
	Gradient          float64
	GradientAngleRad  float64
	YIntercept        float64
	R2                float64
	Prediction        []point.NumPoint
	AbsoluteErrorMean float64
	ErrorStd          float64
}

// Predict returns the fitted y value at x.
func (m *Model) Predict(x float64) float64 {
	return m.Gradient*x + m.YIntercept
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{y = %.4f*x + %.4f, R²: %.4f, MAE: %.4f, σ: %.4f}",
		m.Gradient, m.YIntercept, m.R2, m.AbsoluteErrorMean, m.ErrorStd)
}

// Fitter fits a linear model to numeric points.
type Fitter interface {
	Fit(points []point.NumPoint) (*Model, error)
}

// OLS is the ordinary least squares Fitter.
type OLS struct{}

var _ Fitter = OLS{}

// Fit implements Fitter.
func (OLS) Fit(points []point.NumPoint) (*Model, error) {
	return Fit(points)
}
