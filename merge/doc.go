// Package merge implements the recursive deep-merge used to combine
// configuration documents.
//
// Mappings are merged key by key: when both sides hold a mapping at the same
// key the two are merged recursively, any other value is replaced wholesale
// by the higher-priority side. Arrays are values, not mappings, so they are
// never concatenated. Inputs are never mutated; nested mappings are cloned
// before they become merge destinations, so a document can safely participate
// in several merges.
package merge
