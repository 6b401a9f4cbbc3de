/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain sequences for replay protection.

The address of a signer is its ed25519 public key.
*/
package sigs
