// Package scope provides a guard that runs cleanup and error callbacks
// around a block of work and reports the block's outcome as a tease.Result.
//
// Common usage:
//
//	res := scope.Run(func() (*os.File, error) {
//		return os.Open(path)
//	},
//		scope.OnExit[*os.File](func() { log.Println("open attempted") }),
//		scope.OnError[*os.File](audit),
//	)
//
// Exit callbacks always run, last-registered first, after the block and any
// error or success callbacks. Panics inside the block re-raise by default;
// with CatchPanics they are converted into a *tease.PanicError failure
// instead.
package scope
