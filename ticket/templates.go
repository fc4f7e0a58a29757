package ticket

const ticketHTML = `<html>
<head>
  <title>Ticket - La Perle Rouge</title>
  <style>
    body {
      font-family: 'Courier New', monospace;
      text-align: center;
      padding: 1rem;
      width: 300px;
      margin: 0 auto;
    }
    .header { font-size: 1.5rem; font-weight: bold; margin-bottom: 1rem; }
    .date { margin-bottom: 1rem; font-size: 0.8rem; }
    .item { display: flex; justify-content: space-between; margin-bottom: 0.5rem; text-align: left; }
    .item-name { width: 60%; }
    .item-price { width: 40%; text-align: right; }
    .total { margin-top: 1rem; font-weight: bold; border-top: 1px dashed black; padding-top: 0.5rem; font-size: 1.2rem; }
    .footer { margin-top: 2rem; font-size: 0.8rem; }
    .barcode { margin-top: 1rem; font-family: 'Libre Barcode 39', cursive; font-size: 2.5rem; }
    .message { margin-top: 1rem; font-style: italic; font-size: 0.9rem; }
  </style>
  <link href="https://fonts.googleapis.com/css2?family=Libre+Barcode+39&display=swap" rel="stylesheet">
</head>
<body>
  <div class="header">LA PERLE ROUGE</div>
  <div class="date">{{.Order.Date.Format "02/01/2006 15:04:05"}}</div>
  <div class="server">Serveur: {{.Order.AgentName}}</div>
  <div class="items">
    {{range $i, $item := .Order.Items}}
    <div class="item">
      <div class="item-name">{{inc $i}}. {{$item.Quantity}}x {{$item.DrinkName}}</div>
      <div class="item-price">{{line $item}} MAD</div>
    </div>
    {{end}}
  </div>
  <div class="total">Total: {{money .Order.Total}} MAD</div>
  <div class="barcode">{{.Order.ID}}</div>
  <div class="message">{{.Message}}</div>
  <div class="footer">Merci de votre visite!</div>
  <script>setTimeout(function () { window.print(); }, 500);</script>
</body>
</html>
`

const invoiceHTML = `<html>
<head>
  <title>Facture - La Perle Rouge</title>
  <style>
    body { font-family: 'Arial', sans-serif; margin: 0; padding: 20px; color: #333; }
    .invoice { max-width: 800px; margin: 0 auto; padding: 20px; border: 1px solid #eee; box-shadow: 0 0 10px rgba(0, 0, 0, 0.15); }
    .header { text-align: center; margin-bottom: 20px; border-bottom: 1px solid #eee; padding-bottom: 10px; }
    .title { font-size: 24px; font-weight: bold; color: #e63946; }
    .info { display: flex; justify-content: space-between; margin-bottom: 20px; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 10px; border-bottom: 1px solid #eee; text-align: left; }
    th { background-color: #f8f8f8; }
    .total { margin-top: 20px; text-align: right; font-size: 18px; font-weight: bold; }
    .footer { margin-top: 30px; text-align: center; color: #777; font-size: 14px; }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <div class="title">LA PERLE ROUGE</div>
      <div>Facture #{{.ID}}</div>
    </div>
    <div class="info">
      <div>
        <div><strong>Date:</strong> {{.Date.Format "02/01/2006"}}</div>
        <div><strong>Agent:</strong> {{.AgentName}}</div>
      </div>
      <div>
        <div><strong>La Perle Rouge</strong></div>
        <div>123 Avenue des Cafés</div>
        <div>75001 Paris, France</div>
        <div>Tel: 01 23 45 67 89</div>
      </div>
    </div>
    <table>
      <thead>
        <tr>
          <th>Produit</th>
          <th>Quantité</th>
          <th>Prix unitaire</th>
          <th>Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.DrinkName}}</td>
          <td>{{.Quantity}}</td>
          <td>{{money .UnitPrice}} MAD</td>
          <td>{{line .}} MAD</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div class="total">Total: {{money .Total}} MAD</div>
    <div class="footer">
      Merci de votre confiance. À bientôt chez La Perle Rouge !
    </div>
  </div>
  <script>setTimeout(function () { window.print(); }, 500);</script>
</body>
</html>
`

const reportHTML = `<html>
<head>
  <title>Rapport de Revenus - La Perle Rouge</title>
  <style>
    body { font-family: 'Arial', sans-serif; margin: 0; padding: 20px; color: #333; }
    .report { max-width: 800px; margin: 0 auto; padding: 20px; border: 1px solid #eee; }
    .header { text-align: center; margin-bottom: 20px; border-bottom: 1px solid #eee; padding-bottom: 10px; }
    .title { font-size: 24px; font-weight: bold; color: #e63946; }
    .summary { display: flex; justify-content: space-between; margin-bottom: 20px; }
    .summary div { text-align: center; }
    .summary .value { font-size: 20px; font-weight: bold; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 10px; border-bottom: 1px solid #eee; text-align: left; }
    th { background-color: #f8f8f8; }
  </style>
</head>
<body>
  <div class="report">
    <div class="header">
      <div class="title">LA PERLE ROUGE</div>
      <div>Rapport de Revenus — {{.Period}}</div>
    </div>
    <div class="summary">
      <div><div>Revenu Total</div><div class="value">{{money .Total}} €</div></div>
      <div><div>Nombre de Jours</div><div class="value">{{.Days}}</div></div>
      <div><div>Moyenne Journalière</div><div class="value">{{money .Average}} €</div></div>
    </div>
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Montant</th>
        </tr>
      </thead>
      <tbody>
        {{range .Revenues}}
        <tr>
          <td>{{.Date}}</td>
          <td>{{money .Amount}} €</td>
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>
  <script>setTimeout(function () { window.print(); }, 500);</script>
</body>
</html>
`
