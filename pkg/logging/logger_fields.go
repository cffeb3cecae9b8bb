package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers for traversal and race logging

func Component(name string) Field {
	return String("component", name)
}

func Strategy(name string) Field {
	return String("strategy", name)
}

func StartNode(id string) Field {
	return String("start", id)
}

func EndNode(id string) Field {
	return String("end", id)
}

func Steps(n int) Field {
	return Int("steps", n)
}

func VisitedCount(n int) Field {
	return Int("visited", n)
}

func PathLength(n int) Field {
	return Int("path_length", n)
}

func PathWeight(w int) Field {
	return Int("path_weight", w)
}

func Verdict(v string) Field {
	return String("verdict", v)
}

func NodeCount(n int) Field {
	return Int("nodes", n)
}

func EdgeCount(n int) Field {
	return Int("edges", n)
}

func RequestID(id string) Field {
	return String("request_id", id)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
