// Package uischema loads form declarations from JSON or YAML documents and
// overlays them onto OpenAPI-derived form models. A declaration names the
// fields of a form in submission order together with the control each field
// mounts as; radio fields list the options that become the group members.
//
//	forms:
//	  login:
//	    label: Sign in
//	    fields:
//	      - name: username
//	      - name: password
//	        control: password
//	      - name: age
//	        control: radio
//	        options: [minor, major]
package uischema
