// Package server runs an http.Server with graceful shutdown and coordinates
// process shutdown signals.
//
// Lifecycle under errgroup:
//
//	ctx, stop := server.ShutdownContext(context.Background(),
//		server.WithShutdownLogger(log),
//	)
//	defer stop()
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// ShutdownContext is cancelled by the first interrupt or, on unix, SIGTERM.
// At that point "signal received, starting graceful shutdown" is printed to
// stdout, and Run drains in-flight requests within the shutdown timeout.
//
// WaitForShutdown is the blocking form and returns the received signal.
package server
