/*
Package nft implements a registry of unique assets.

Every asset has exactly one owner, the custodian allowed to direct its
transfer. An asset may belong to a collection. Transfers of such assets
must reference the collection they belong to.

Other extensions move assets through the Controller, proving their
authority through an x.Authenticator.
*/
package nft
