// Package procstate models a homogeneous multicore processor as a fixed
// array of cores, each either Idle or Running a node to completion. It is
// the only place simulated time is advanced one tick at a time; schedulers
// drive it but never peek at or mutate a core's state except through its
// exported methods.
package procstate
