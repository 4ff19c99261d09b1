// Package logger provides structured logging for the pipeline engine,
// built on zerolog. It exposes a thin wrapper with leveled methods taking
// optional field maps, plus helpers for building those maps.
package logger
