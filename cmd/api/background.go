package main

import "fmt"

// background runs fn outside the request, recovering panics and tracking it
// so graceful shutdown can wait for it.
func (app *application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "error", fmt.Sprint(err))
			}
		}()

		fn()
	}()
}
