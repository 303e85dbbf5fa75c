// Package assets provides the HTML template and CSS styles used to wrap
// converted fragments into a standalone HTML5 document.
//
// Assets are embedded at compile time:
//
//	styles/
//	└── {name}.css        # stylesheet inlined into the document head
//	templates/
//	└── {name}.html       # html/template source for the page shell
//
// Asset names are validated so that they cannot escape their directory.
package assets
