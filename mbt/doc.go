// Package mbt defines the contract between a system under test and the fizzbee
// exploration engine.
//
// A model implements Target: Init and Cleanup bracket a run, Execute performs
// one action on one role instance and Roles lists the instances. Actions may run
// concurrently with each other but never with Init, Cleanup or Roles. Returning
// a NotImplemented error from Execute tells the engine the action is skipped on
// purpose.
//
// Values exchanged with the engine are Value trees: None, Int, Str, Bool, Map,
// List, Set and the Ignore sentinel. ValueOf converts plain Go data.
package mbt
