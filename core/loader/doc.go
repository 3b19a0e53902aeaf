// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface and is registered on a Manager,
// which loads the enabled ones in registration order:
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(catalog.NewFeature(catalog.NewService(store, nil, logg), true))
//	loaded, err := mgr.LoadAll(app)
package loader
