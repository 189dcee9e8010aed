// Package writers turns matches into serialized output streams.
//
// Design:
//   • Writers own the output side (buffering, broken pipes); line layout
//     comes from output.Formatter.
//   • Scan stays domain-only; Pipeline stays orchestration-only.
package writers
