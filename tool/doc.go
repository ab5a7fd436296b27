// Package tool provides the registry the planner uses to expose its travel
// tools to a chat provider.
//
// Define tool arguments as a struct with tags, then register with Func:
//
//	type FlightArgs struct {
//	    Origin string `json:"origin" desc:"Departure city" required:"true"`
//	}
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("search_flights", "Search flight options",
//	        func(ctx context.Context, args FlightArgs) (string, error) {
//	            return findFlights(args.Origin), nil
//	        }),
//	)
//
// The JSON schema for each tool's parameters is generated from the argument
// struct's json/desc/required/enum tags.
package tool
