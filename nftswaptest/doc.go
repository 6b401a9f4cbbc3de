/*
Package nftswaptest provides mocks and helpers for testing handlers,
decorators and controllers without running a full application.
*/
package nftswaptest
