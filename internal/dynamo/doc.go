// Package dynamo provides the composition primitives of a discrete-time
// feedback loop.
//
// The package defines three contracts, generic over the state type S and the
// input type U:
//
//   - [System]: owns a state and advances it when an input is applied
//   - [Controller]: computes an input from a (state, target) pair
//   - [ControlledSystem]: ties one Controller to one System behind a target
//
// and the adapters that retarget them to other representations:
//
//   - [MapControllerState], [MapControllerOutput]
//   - [MapSystemInput], [MapSystemState]
//   - [WrapController], [WrapSystem], [WrapControlledSystem]
//
// # Example
//
//	sys := dynamo.NewSystem(0.0, func(x, u float64) float64 { return x + u })
//	ctrl := dynamo.ControlFunc[float64, float64](func(x, target float64) float64 {
//		return 0.5 * (target - x)
//	})
//	loop := dynamo.NewControlledSystem[float64, float64](ctrl, sys)
//	loop.SetTarget(10)
//	for i := 0; i < 10; i++ {
//		loop.Update()
//	}
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. A loop is ticked by a
// single caller: state is read, the input computed and then applied, in that
// order, once per tick.
package dynamo
