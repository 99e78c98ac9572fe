package webapp

// indexPage is the embedded single-page chat client. It posts questions to
// /api/chat and mirrors the live trace stream from /ws into the side panel.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Smart Utility Agent</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6f8; color: #1b1f24; }
  header { background: #1b4965; color: #fff; padding: 14px 20px; }
  header h1 { font-size: 18px; margin: 0; }
  main { display: flex; gap: 16px; padding: 16px; max-width: 1100px; margin: 0 auto; }
  section { background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,.12); display: flex; flex-direction: column; }
  #chat { flex: 3; min-height: 70vh; }
  #trace { flex: 2; min-height: 70vh; }
  h2 { font-size: 14px; margin: 0; padding: 10px 14px; border-bottom: 1px solid #e4e7eb; color: #556; }
  #messages, #steps { flex: 1; overflow-y: auto; padding: 12px 14px; font-size: 14px; }
  .msg { margin-bottom: 10px; white-space: pre-wrap; }
  .msg.user { color: #1b4965; font-weight: 600; }
  .msg.agent { color: #1b1f24; }
  .step { margin-bottom: 8px; white-space: pre-wrap; font-family: ui-monospace, monospace; font-size: 12px; }
  .step.thought { color: #445; }
  .step.action { color: #0a7; }
  .step.observation { color: #a37; }
  .step.answer { color: #171; font-weight: 600; }
  form { display: flex; gap: 8px; padding: 12px 14px; border-top: 1px solid #e4e7eb; }
  input { flex: 1; padding: 8px 10px; border: 1px solid #cdd3da; border-radius: 6px; font-size: 14px; }
  button { padding: 8px 16px; border: 0; border-radius: 6px; background: #1b4965; color: #fff; cursor: pointer; }
  button:disabled { opacity: .5; }
</style>
</head>
<body>
<header><h1>Smart Utility Agent</h1></header>
<main>
  <section id="chat">
    <h2>Chat</h2>
    <div id="messages"></div>
    <form id="form">
      <input id="prompt" placeholder="Ask a question..." autocomplete="off" maxlength="4000">
      <button id="send" type="submit">Send</button>
    </form>
  </section>
  <section id="trace">
    <h2>Live trace</h2>
    <div id="steps"></div>
  </section>
</main>
<script>
const messages = document.getElementById("messages");
const steps = document.getElementById("steps");
const form = document.getElementById("form");
const prompt = document.getElementById("prompt");
const send = document.getElementById("send");

function addMessage(cls, text) {
  const div = document.createElement("div");
  div.className = "msg " + cls;
  div.textContent = text;
  messages.appendChild(div);
  messages.scrollTop = messages.scrollHeight;
}

function connect() {
  const proto = location.protocol === "https:" ? "wss" : "ws";
  const ws = new WebSocket(proto + "://" + location.host + "/ws");
  ws.onmessage = (ev) => {
    const step = JSON.parse(ev.data);
    const div = document.createElement("div");
    div.className = "step " + step.kind;
    let label = "[" + step.iteration + "] " + step.kind;
    if (step.tool) label += " " + step.tool;
    div.textContent = label + ": " + (step.text || JSON.stringify(step.args || []));
    steps.appendChild(div);
    steps.scrollTop = steps.scrollHeight;
  };
  ws.onclose = () => setTimeout(connect, 2000);
}
connect();

form.addEventListener("submit", async (ev) => {
  ev.preventDefault();
  const question = prompt.value.trim();
  if (!question) return;
  addMessage("user", question);
  prompt.value = "";
  send.disabled = true;
  try {
    const res = await fetch("/api/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ prompt: question }),
    });
    const data = await res.json();
    addMessage("agent", data.reply || data.error || "Something went wrong.");
  } catch (err) {
    addMessage("agent", "Request failed: " + err);
  } finally {
    send.disabled = false;
    prompt.focus();
  }
});
</script>
</body>
</html>
`
