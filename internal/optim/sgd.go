package optim

import (
	"github.com/born-ml/focal/internal/nn"
	"github.com/born-ml/focal/internal/tensor"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Updates write parameter memory directly and never touch the backend, so
// they are not recorded on an autodiff tape.
type SGD[T tensor.Float, B tensor.Backend] struct {
	params     []*nn.Parameter[T, B]
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter[T, B]][]T
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(params, optim.SGDConfig{LR: 0.1, Momentum: 0.9})
func NewSGD[T tensor.Float, B tensor.Backend](params []*nn.Parameter[T, B], config SGDConfig) *SGD[T, B] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[T, B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[T, B]][]T),
	}
}

// Step performs a single optimization step.
func (s *SGD[T, B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}

		data := param.Tensor().Data()
		if s.momentum == 0 {
			for i, g := range grad {
				data[i] -= T(s.lr * float64(g))
			}
			continue
		}

		velocity, ok := s.velocities[param]
		if !ok {
			velocity = make([]T, len(data))
			s.velocities[param] = velocity
		}
		for i, g := range grad {
			velocity[i] = T(s.momentum*float64(velocity[i]) + float64(g))
			data[i] -= T(s.lr * float64(velocity[i]))
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[T, B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[T, B]) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD[T, B]) SetLR(lr float64) {
	s.lr = lr
}
