/*
Package utils contains decorators that apply to every transaction
regardless of its message: panic recovery, logging and savepoints.
*/
package utils
