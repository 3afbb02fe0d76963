package nn

import (
	"fmt"

	"github.com/born-ml/descent/internal/tensor"
)

// MSELoss computes Mean Squared Error loss and its gradient with respect
// to the predictions.
//
//	Loss = mean((predictions - targets)²)
//	Grad = 2 * (predictions - targets) / N
//
// When the predictions are a parameter, the gradient can be passed to
// Layer.SetGrad directly.
//
// Example:
//
//	loss, grad, err := nn.MSELoss(layer.Param("w"), target)
//	_ = layer.SetGrad("w", grad)
func MSELoss(predictions, targets *tensor.Tensor) (float64, *tensor.Tensor, error) {
	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, nil, fmt.Errorf("mse loss: %w", err)
	}

	n := float64(diff.Len())
	var sum float64
	for _, d := range diff.Data() {
		sum += d * d
	}
	return sum / n, diff.Scale(2 / n), nil
}
