// Package server runs an HTTP server around a mounted routes tree. It
// assembles the chi mux, the observability middleware chain, and
// graceful shutdown, driven by a Config.
//
// Minimal usage:
//
//	reg := router.NewRegistry()
//	reg.Register("departments/get", &router.Module{Handler: list})
//
//	srv, err := server.New(server.Config{Registry: reg})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Run(); err != nil {
//		log.Fatal(err)
//	}
package server
