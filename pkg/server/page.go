package server

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Wallet Bridge</title>
<style>
  body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
  section { margin-bottom: 1.5rem; }
  input { margin-right: 0.5rem; }
  #message { color: #a00; min-height: 1.2rem; }
</style>
</head>
<body>
<h1>Wallet Bridge</h1>

<section>
  <button id="connectWallet">Connect Wallet</button>
  <span id="connectStatus">{{.ConnectStatus}}</span>
</section>

<section>
  Balance: <span id="balance">{{.Balance}}</span>
</section>

<section>
  <input id="depositAmount" placeholder="Amount">
  <button id="depositButton">Deposit</button>
</section>

<section>
  <input id="withdrawAmount" placeholder="Amount">
  <button id="withdrawButton">Withdraw</button>
</section>

<section>
  <input id="transferAddress" placeholder="Recipient address">
  <input id="transferAmount" placeholder="Amount">
  <button id="transferButton">Transfer</button>
</section>

<div id="message"></div>

<script>
async function post(path, body) {
  const res = await fetch(path, {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify(body || {}),
  });
  if (!res.ok) {
    throw new Error(await res.text());
  }
  return res.json();
}

async function refreshView() {
  const view = await (await fetch("/view")).json();
  document.getElementById("connectStatus").textContent = view.connectStatus;
  document.getElementById("balance").textContent = view.balance;
}

function show(result) {
  const message = document.getElementById("message");
  message.textContent = result.status === "failure"
    ? result.errorKind + ": " + result.message
    : "";
  if (result.errorKind === "wrong_network") {
    console.error(result.message);
    alert(result.message);
  }
}

async function run(path, body) {
  try {
    show(await post(path, body));
  } catch (err) {
    document.getElementById("message").textContent = err.message;
  }
  await refreshView();
}

function value(id) {
  return document.getElementById(id).value;
}

document.getElementById("connectWallet").onclick = () => run("/connect");
document.getElementById("depositButton").onclick = () =>
  run("/deposit", { amount: value("depositAmount") });
document.getElementById("withdrawButton").onclick = () =>
  run("/withdraw", { amount: value("withdrawAmount") });
document.getElementById("transferButton").onclick = () =>
  run("/transfer", { to: value("transferAddress"), amount: value("transferAmount") });
</script>
</body>
</html>
`
