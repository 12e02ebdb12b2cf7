// Package domain contains the core model for cubebag: games, draws, the fixed bag
// limits and the two aggregates computed over a set of games.
//
// The domain does not touch the filesystem or the terminal. Infra/adapters feed raw
// lines in and render results out.
package domain
