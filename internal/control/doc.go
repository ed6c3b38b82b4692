// Package control provides error-feedback controllers.
//
// Every controller here implements [dynamo.Controller] and computes its
// output from the error target - state:
//
//   - [Error]: applies a feedback function to the error
//   - [PID]: splits the error into proportional, integral and derivative
//     terms, converts each through the feedback function and sums them
//     weighted by gains
//   - [MatrixFeedback]: a feedback function u = K·e for [algebra.VecN]
//   - [Manual]: open-loop controller returning a fixed input
//
// # Usage
//
//	pid := control.NewPID[algebra.Float, algebra.Float, algebra.Float](
//		func(e algebra.Float) algebra.Float { return e },
//		clock.NewFixed(0.01),
//	)
//	pid.SetGains(2, 0.1, 0.5)
//	u := pid.Control(state, target)
//
// Controllers keep per-instance memory (the last error, PID accumulators)
// and must not be shared between loops.
package control
