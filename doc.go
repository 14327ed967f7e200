// Copyright 2026 printlog. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package printlog-sheets uploads completed 3D prints from a printer event log to a Google Sheets worksheet.

printlog-sheets can be used from the command line but is really intended to be run from a cron job. Each run
reads the JSON event file written by the printer monitoring software, appends a row to the first worksheet of
the spreadsheet for every PRINT_DONE event and then clears the event file.

printlog-sheets supports the following commands:

  - upload, to append the completed prints to the worksheet and clear the event file (the default)
  - preview, to list the rows that would be uploaded
  - clear, to clear the event file
  - authorise, to authorise access to Google Sheets with an OAuth client credentials file
  - version, to display the current version
*/
package printlog
