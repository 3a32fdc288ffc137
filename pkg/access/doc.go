// Package access evaluates role-based permission queries.
//
// The model is deliberately small: owners hold every permission, managers
// hold exactly what their profile grants. Evaluation is pure and never
// fails — a malformed or empty profile degrades to the minimal default
// grant rather than an error, keeping permission checks safe to call from
// any rendering path.
package access
