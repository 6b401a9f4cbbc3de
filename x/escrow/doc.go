/*
Package escrow implements an atomic swap of one unique asset for a fixed
native payment.

A seller creates an escrow record for an asset and a price, optionally
naming the only buyer allowed to purchase. The record lives at an address
derived from the asset and the seller, so only one record per pair can
exist. After the seller deposits the asset, the record itself is the
custodian. No private key exists for the record address. The escrow
extension proves its authority by re-deriving the record condition from
the stored fields.

A buyer pays the price directly to the seller and receives the asset in
the same operation. Before a sale the seller may cancel and get the asset
back. Once the record is terminal the seller closes it and reclaims the
record deposit.

	Pending --deposit--> Deposited --buy----> Completed --close--> (deleted)
	                               \--cancel-> Cancelled --close--> (deleted)
*/
package escrow
