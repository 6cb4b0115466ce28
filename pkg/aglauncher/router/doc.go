// Package router runs full-screen modes one after another.
//
// Each screen is a function that owns the frame loop until it finishes and
// returns a result. A single transition function looks at that result and
// picks the next screen and its input, so every mode change is in one place.
//
// # Basic Usage
//
//	const (
//	    ScreenCarousel router.Screen = iota
//	    ScreenBreak
//	)
//
//	r := router.New(logger)
//
//	r.Register(ScreenCarousel, "carousel", func(input any) (any, error) {
//	    return runCarousel()
//	})
//
//	r.Register(ScreenBreak, "break", func(input any) (any, error) {
//	    return runBreak()
//	})
//
//	r.OnTransition(func(from router.Screen, result any) (router.Screen, any) {
//	    switch from {
//	    case ScreenCarousel:
//	        if result.(CarouselResult).SessionOver {
//	            return ScreenBreak, nil
//	        }
//	    case ScreenBreak:
//	        if result.(BreakResult).Reset {
//	            return ScreenCarousel, nil
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenCarousel, nil)
package router
