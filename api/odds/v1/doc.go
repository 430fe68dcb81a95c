// Package oddsv1 defines the riskodds.odds.v1.OddsService wire contract.
//
// Every RPC carries a google.protobuf.Struct holding the JSON form of the
// typed request and response structs in this package, so the service needs
// no generated message code. Decoding is strict: unknown fields and values
// of the wrong JSON type are rejected with InvalidArgument.
package oddsv1
