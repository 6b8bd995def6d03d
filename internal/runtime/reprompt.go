package runtime

import "github.com/aretw0/minerva/pkg/graph"

const (
	startNotice = "Por favor elige una de las opciones válidas."
	otherNotice = "❓ No entendí tu respuesta.\n" +
		"Por favor elige una de las opciones válidas:\n"
)

// Reprompt renders the answer for an unrecognized message at nodeID.
//
// The start node appends the notice after its menu; every other node prepends it.
// TODO: decide with the client owners whether both cases can share one phrasing.
func Reprompt(g *graph.Graph, nodeID string) string {
	msg, _ := g.MessageFor(nodeID)
	if nodeID == g.Start() {
		return msg + "\n" + startNotice
	}
	return otherNotice + msg
}
