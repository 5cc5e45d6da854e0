package htmldoc

// Inline stylesheet for generated documents. The page must be fully
// self-contained so the layout engine needs no external stylesheet
// resolution: print margins, table borders and typography all live here.
const documentCSS = `
@page { margin: 18mm 16mm; }
body {
  font-family: "Helvetica Neue", Helvetica, Arial, sans-serif;
  font-size: 10pt;
  color: #1a1a1a;
  line-height: 1.45;
}
header.doc-header { border-bottom: 2px solid #00467f; padding-bottom: 6mm; margin-bottom: 8mm; }
header.doc-header h1 { color: #00467f; font-size: 16pt; margin: 0 0 2mm 0; }
footer.doc-footer { border-top: 1px solid #9a9a9a; margin-top: 10mm; padding-top: 3mm; font-size: 8pt; color: #646464; }
section.doc-markdown { margin: 4mm 0; }
table.doc-table { width: 100%; border-collapse: collapse; margin: 5mm 0; }
table.doc-table th {
  background: #00467f; color: #ffffff; text-align: left;
  padding: 2mm 2.5mm; font-size: 9pt;
}
table.doc-table td { border-bottom: 0.3mm solid #d0d0d0; padding: 1.8mm 2.5mm; vertical-align: top; }
table.doc-table tr:nth-child(even) td { background: #f4f7fa; }
figure.doc-image { margin: 5mm 0; }
figure.doc-image img { max-width: 100%; }
`
