// Package cache provides a small generic LRU cache.
//
//	faces := cache.New[text.Spec, font.Face](64)
//	faces.Set(spec, face)
//	face, ok := faces.Get(spec)
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache
