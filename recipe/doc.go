// Package recipe adapts templates to crafting: it decides whether item
// stacks satisfy a recipe's named inputs and builds the output stack by
// instantiating the recipe's output template with the inputs' data.
//
// A recipe definition, here in YAML:
//
//	id: named_wand
//	inputs:
//	  base:
//	    items: [minecraft:stick]
//	    data: {display: {Name: ""}}
//	  ingredient:
//	    items: [minecraft:name_tag]
//	output:
//	  id: minecraft:stick
//	  data:
//	    display:
//	      Name: $ingredient.display.Name
//	    "$": $base
//
// Input data patterns are matched by containment unless the input sets
// mode: overlap. The output template sees every input by name; an input
// without data is seen as an empty compound.
package recipe
