/*
Package gherkin is a tokenizer for Gherkin-flavored feature files.

Gherkin is a line-oriented plain-text syntax for behavior-driven test
specifications (Feature/Scenario/Given-When-Then steps, data tables, tags).
This module turns raw feature-file text into a linear stream of typed
tokens, ready to be consumed by a parser building executable test specs.
Package structure is as follows:

■ lexer: Package lexer implements the scanning engine, a single-pass
stateful state machine operating on a character cursor.

■ lang: Package lang provides the localized keyword tables which drive
the classification of structural keywords and step keywords.

The base package contains the token data types which are shared between
the sub-packages and clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gherkin
