// Package datamanager is the registry of store kinds and named stores.
//
// A kind is registered once with a Provider. Callers then request a
// Configuration for a (name, kind) pair, set its kind-specific parameters
// and call Store to build the instance. The registry keeps one instance per
// name: finalizing a configuration for a name that already exists returns
// the existing store and ignores the new parameters.
//
//	reg := datamanager.New(datamanager.WithLogger(logger))
//	reg.RegisterProvider("memory", datamanager.ProviderFunc(newMemoryConfig))
//	cfg, err := reg.Config("cache", "memory")
//	s, err := cfg.Store()
//
// New kinds are added from outside this package by embedding Base in a
// configuration type that implements Build.
package datamanager
