// Package config provides the YAML declaration file: a way to describe sum
// types and their cases without annotating Go sources.
//
// # Schema Overview
//
//	version: "1"
//	package: apierror
//	import_path: example.com/app/apierror     # optional
//	response_package: httperror-generator/response
//	output: ./apierror                         # optional, relative to the file
//	strict: false
//	sumtypes:
//	  - name: APIError
//	    function: APIErrorResponse             # optional
//	    kind: interface                        # interface (default) | struct | other
//	    type_params:
//	      - name: T
//	        constraint: any
//	    cases:
//	      - name: NotFound
//	        status: 404
//	        message: "not found: {}"
//	        pointer: false
//	        type_args: [T]
//	        slots:
//	          - field: ID
//	            type: string
//
// Unknown keys are reported with suggestions. Descriptors built from a
// declaration file are identical to the ones read from source directives.
package config
