// Package choreolog provides the structured logger used by pipeline. It
// wraps go.uber.org/zap the way the viamrobotics-rdk example repo wires its
// services: a single *zap.SugaredLogger set on the Coordinator's Log field,
// never a package-level global, with a no-op default so callers that don't
// care about logs never need to construct one.
//
// Pure algorithmic packages (assignment, pathgen, collision, metrics, geom)
// do not import this package: they return errors and let their caller log.
package choreolog
