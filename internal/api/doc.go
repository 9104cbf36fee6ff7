// Package api implements the gateway's HTTP surface: the route table, the
// uniform dispatch contract applied to every endpoint, and the translation
// of partial-update requests into the downstream client's operation format.
//
// Every route follows the same contract: authorize, build the downstream
// call's arguments, invoke exactly one downstream operation, and map the
// outcome to either the route's success status or the single normalized
// error shape. The route table in routes.go is the complete catalog; the
// builders in dispatch.go are the one parameterized dispatch path all
// entries share.
package api
